// run.go - Render every job of a manifest.
package preset

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/xob0t/GoGradient/pkg/gradient"
	"github.com/xob0t/GoGradient/pkg/sink"
)

// Run renders all jobs in order. A failing job does not stop the others; the
// returned error joins every failure.
func Run(jobs []Job, log logrus.FieldLogger) ([]Result, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}

	results := make([]Result, 0, len(jobs))
	var errs []error
	for _, j := range jobs {
		res := Result{Output: j.Output}
		data, err := gradient.Render(j.Config)
		if err == nil {
			err = sink.WriteFile(j.Output, data)
		}
		if err != nil {
			res.Err = err
			errs = append(errs, fmt.Errorf("%s: %w", j.Output, err))
			log.WithError(err).WithField("output", j.Output).Error("gradient failed")
		} else {
			res.Size = len(data)
			log.WithFields(logrus.Fields{
				"output": j.Output,
				"axis":   j.Config.Axis.String(),
				"extent": j.Config.Extent,
			}).Info("gradient written")
		}
		results = append(results, res)
	}
	return results, errors.Join(errs...)
}
