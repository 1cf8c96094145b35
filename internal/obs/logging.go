// Package obs contains observability utilities such as logging and metrics.
package obs

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/fairyhunter13/product-catalog-api/internal/config"
)

// Logger is the global structured logger used by the service.
//
// It starts out as a usable info-level logger so packages can log before
// InitLogger runs (in tests, for instance).
var Logger = logrus.New()

// InitLogger configures Logger for env: JSON lines in production, human
// readable text elsewhere.
func InitLogger(env config.Environment, level string) error {
	return initLogger(os.Stdout, env, level)
}

func initLogger(out io.Writer, env config.Environment, level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "parse log level %q", level)
	}
	l := logrus.New()
	l.Out = out
	l.Level = lvl
	if env.IsProduction() {
		l.Formatter = &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "severity",
				logrus.FieldKeyMsg:   "message",
			},
			TimestampFormat: time.RFC3339Nano,
		}
	} else {
		l.Formatter = &logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339}
	}
	Logger = l
	return nil
}
