// Package commands parses the command palette input into typed commands.
package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeGoto       Type = "goto"
	TypeToday      Type = "today"
	TypeSave       Type = "save"
	TypeReschedule Type = "reschedule"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type GotoArgs struct {
	// Date is "yyyy-mm-dd" or the literal "today".
	Date string
}

type RescheduleArgs struct {
	// When is "yyyy-mm-dd" or the literal "today".
	When string
}

type Command struct {
	Type       Type
	Raw        string
	Goto       *GotoArgs
	Reschedule *RescheduleArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeGoto:
		return parseGoto(input, args)
	case TypeToday:
		return Command{Type: TypeToday, Raw: input}, nil
	case TypeSave:
		return Command{Type: TypeSave, Raw: input}, nil
	case TypeReschedule:
		return parseReschedule(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseGoto(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "goto requires a date (yyyy-mm-dd or today)"}
	}
	when, err := normalizeWhen(args[0])
	if err != nil {
		return Command{}, err
	}
	return Command{Type: TypeGoto, Raw: raw, Goto: &GotoArgs{Date: when}}, nil
}

func parseReschedule(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "reschedule requires a date (yyyy-mm-dd or today)"}
	}
	when, err := normalizeWhen(args[0])
	if err != nil {
		return Command{}, err
	}
	return Command{Type: TypeReschedule, Raw: raw, Reschedule: &RescheduleArgs{When: when}}, nil
}

func normalizeWhen(arg string) (string, error) {
	when := strings.ToLower(strings.TrimSpace(arg))
	if when == "today" {
		return when, nil
	}
	if !looksLikeDate(when) {
		return "", &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("not a date: %s", arg)}
	}
	return when, nil
}

func looksLikeDate(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	for i, r := range s {
		if i == 4 || i == 7 {
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
