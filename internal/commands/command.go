package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sandeepkv93/levelup/internal/model"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeToggle Type = "toggle"
	TypeSave   Type = "save"
	TypeLoad   Type = "load"
	TypeTag    Type = "tag"
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

type AddArgs struct {
	Tag         model.Tag
	Description string
}

// ToggleArgs carries a 1-based checklist position.
type ToggleArgs struct {
	Position int
}

type TagArgs struct {
	Tag model.Tag
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Toggle *ToggleArgs
	Tag    *TagArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
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
	case TypeAdd:
		return parseAdd(input, args)
	case TypeToggle:
		return parseToggle(input, args)
	case TypeSave, TypeLoad:
		if len(args) > 0 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s takes no arguments", head)}
		}
		return Command{Type: Type(head), Raw: input}, nil
	case TypeTag:
		return parseTag(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a tag and a description"}
	}
	tag, err := knownTag(args[0])
	if err != nil {
		return Command{}, err
	}
	desc := strings.TrimSpace(strings.Join(args[1:], " "))
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Tag: tag, Description: desc}}, nil
}

func parseToggle(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "toggle requires a task number"}
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid task number: %s", args[0])}
	}
	return Command{Type: TypeToggle, Raw: raw, Toggle: &ToggleArgs{Position: n}}, nil
}

func parseTag(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "tag requires a tag name"}
	}
	tag, err := knownTag(args[0])
	if err != nil {
		return Command{}, err
	}
	return Command{Type: TypeTag, Raw: raw, Tag: &TagArgs{Tag: tag}}, nil
}

func knownTag(raw string) (model.Tag, error) {
	tag := model.ParseTag(raw)
	if !tag.IsKnown() {
		return "", &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown tag: %s", raw)}
	}
	return tag, nil
}
