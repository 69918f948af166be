package tokenizer

import (
	"strings"

	"github.com/heathj/gobrowse-tokenizer/tokenizer/charref"
	"github.com/sirupsen/logrus"
)

// Config controls a Tokenizer. The zero value starts in the Data state, logs
// to the standard logrus logger without tracing, and drops parse errors.
type Config struct {
	// Logger receives the transition trace and parse errors at debug level.
	Logger logrus.FieldLogger
	// Debug traces every state transition.
	Debug bool
	// Errors is notified of each parse error. May be nil.
	Errors ErrorHandler

	// InitialState must be a content state.
	InitialState State
	// LastStartTag seeds the appropriate end tag check, for tokenizing the
	// contents of an element such as <script> or <textarea>.
	LastStartTag string
	// AllowCDATA enables CDATA sections, which only exist in foreign content.
	AllowCDATA bool

	Resolver *charref.Resolver
}

func (c Config) withDefaults() Config {
	if c.Logger == nil {
		c.Logger = logrus.StandardLogger()
	}
	if c.Resolver == nil {
		c.Resolver = charref.Default
	}
	c.LastStartTag = strings.ToLower(c.LastStartTag)
	return c
}
