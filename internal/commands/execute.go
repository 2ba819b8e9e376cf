package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add    func(AddArgs) (Result, error)
	Toggle func(ToggleArgs) (Result, error)
	Save   func() (Result, error)
	Load   func() (Result, error)
	Tag    func(TagArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.Add(*cmd.Add)
	case TypeToggle:
		if handlers.Toggle == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.Toggle(*cmd.Toggle)
	case TypeSave:
		if handlers.Save == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.Save()
	case TypeLoad:
		if handlers.Load == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.Load()
	case TypeTag:
		if handlers.Tag == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.Tag(*cmd.Tag)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

func missingHandler(t Type) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", t)}
}
