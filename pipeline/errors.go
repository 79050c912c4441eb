package pipeline

import (
	"errors"
	"fmt"
)

// Kind 错误类别，全部不可恢复，进程以退出码 1 结束
type Kind int

const (
	KindUnrecognizedOption Kind = iota + 1
	KindMissingInput
	KindInvalidEncoding
	KindMalformedIdentifier
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindUnrecognizedOption:
		return "UnrecognizedOption"
	case KindMissingInput:
		return "MissingInput"
	case KindInvalidEncoding:
		return "InvalidEncoding"
	case KindMalformedIdentifier:
		return "MalformedIdentifier"
	case KindIO:
		return "IoFailure"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	switch {
	case e.Detail != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Detail, e.Err)
	case e.Detail != "":
		return e.Detail
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind 判断 err 链中是否有指定类别的 *Error
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

func unrecognized(token string) error {
	return &Error{Kind: KindUnrecognizedOption, Detail: fmt.Sprintf("unrecognized option %q", token)}
}

var errMissingInput = &Error{Kind: KindMissingInput, Detail: "stdin is a tty; pipe something in"}

func ioFailure(op string, err error) error {
	return &Error{Kind: KindIO, Detail: op, Err: err}
}
