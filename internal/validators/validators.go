package validators

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/hadir-app/hadir-api/internal/timezone"
)

var hhmmPattern = regexp.MustCompile(`^([0-1][0-9]|2[0-3]):[0-5][0-9]$`)

// Register installs the custom binding validators on gin's validator
// engine: "hhmm" for working-hours clock strings and "iana_tz" for
// business timezones. Timezone validity is enforced here, at business
// creation, not deferred to booking time.
func Register() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return hhmmPattern.MatchString(fl.Field().String())
	})

	v.RegisterValidation("iana_tz", func(fl validator.FieldLevel) bool {
		return timezone.IsValid(fl.Field().String())
	})
}
