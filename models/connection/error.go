package connection

import "fmt"

// What a session loop should do after a connection error.
const (
	ConnLoopBreak uint8 = iota
	ConnLoopRetry
	ConnLoopAbnormalClosureRetry
	ConnInvalidMsgType
)

type ConnErr struct {
	code  uint8
	desc  string
	cause error
}

func NewConnErr(code uint8) ConnErr {
	return ConnErr{code: code}
}

func (c ConnErr) AddDesc(desc string) ConnErr {
	c.desc = desc
	return c
}

func (c ConnErr) WithCause(err error) ConnErr {
	c.cause = err
	return c
}

func (c ConnErr) Error() string {
	if c.cause != nil {
		return fmt.Sprintf("connection error - code: %d\tdesc: %s\tcause: %v", c.code, c.desc, c.cause)
	}
	return fmt.Sprintf("connection error - code: %d\tdesc: %s", c.code, c.desc)
}

func (c ConnErr) Unwrap() error {
	return c.cause
}

func (c ConnErr) Code() uint8 {
	return c.code
}
