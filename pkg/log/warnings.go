package log

import (
	"github.com/rs/zerolog"

	"github.com/christal251314/caretEnsemble/pkg/errors"
)

// UseZerologWarnings routes library warnings through a zerolog logger.
// Warning types that implement zerolog.LogObjectMarshaler are embedded
// as structured fields.
func UseZerologWarnings(logger zerolog.Logger) {
	errors.SetZerologWarnFunc(func(warning error) {
		ev := logger.Warn()
		if obj, ok := warning.(zerolog.LogObjectMarshaler); ok {
			ev = ev.EmbedObject(obj)
		}
		ev.Msg(warning.Error())
	})
}
