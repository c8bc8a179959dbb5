package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/alexanderramin/learner/internal/domain"
)

// sessionTypeFlag is a --type flag that only accepts known session types.
type sessionTypeFlag struct {
	value domain.SessionType
}

var _ pflag.Value = (*sessionTypeFlag)(nil)

func newSessionTypeFlag(def domain.SessionType) *sessionTypeFlag {
	return &sessionTypeFlag{value: def}
}

func (f *sessionTypeFlag) String() string { return string(f.value) }

func (f *sessionTypeFlag) Set(s string) error {
	t, ok := domain.ParseSessionType(s)
	if !ok {
		return fmt.Errorf("must be one of regular, drill, catchup")
	}
	f.value = t
	return nil
}

func (f *sessionTypeFlag) Type() string { return "type" }

func (f *sessionTypeFlag) Value() domain.SessionType { return f.value }
