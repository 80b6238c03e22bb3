package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Goto       func(GotoArgs) (Result, error)
	Today      func() (Result, error)
	Save       func() (Result, error)
	Reschedule func(RescheduleArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeGoto:
		if handlers.Goto == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "goto handler not configured"}
		}
		return handlers.Goto(*cmd.Goto)
	case TypeToday:
		if handlers.Today == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "today handler not configured"}
		}
		return handlers.Today()
	case TypeSave:
		if handlers.Save == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "save handler not configured"}
		}
		return handlers.Save()
	case TypeReschedule:
		if handlers.Reschedule == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "reschedule handler not configured"}
		}
		return handlers.Reschedule(*cmd.Reschedule)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
