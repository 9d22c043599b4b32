package config

import (
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"talentmap/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// ValidatorSvc holds a singleton validator and translator
type ValidatorSvc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	vOnce sync.Once
	vSvc  *ValidatorSvc
)

// sheetExts are the tabular formats the sheet adapter can open
var sheetExts = map[string]struct{}{
	".xlsx": {},
	".xlsm": {},
	".xltx": {},
	".csv":  {},
}

// Validator returns the singleton validator with english translations and json tag names
func Validator() *ValidatorSvc {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())

		// prefer json tag names in messages
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})

		if err := en_translations.RegisterDefaultTranslations(v, trans); err != nil {
			logger.Named("config").Error().Err(err).Msg("register default translations")
		}

		if err := v.RegisterValidation("sheetext", isSheetFile); err != nil {
			logger.Named("config").Error().Err(err).Msg("register sheetext")
		}
		registerSheetExt(v, trans)

		vSvc = &ValidatorSvc{Validator: v, Translator: trans}
	})
	return vSvc
}

func isSheetFile(fl validator.FieldLevel) bool {
	_, ok := sheetExts[strings.ToLower(filepath.Ext(fl.Field().String()))]
	return ok
}

// ValidationFieldAndMessage returns the first field and translated message
func ValidationFieldAndMessage(err error) (field, message string) {
	if err == nil {
		return "", ""
	}
	if inv, ok := err.(*validator.InvalidValidationError); ok {
		return "", inv.Error()
	}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			return fe.Field(), fe.Translate(Validator().Translator)
		}
	}
	return "", err.Error()
}

func registerSheetExt(v *validator.Validate, trans ut.Translator) {
	_ = v.RegisterTranslation("sheetext", trans,
		func(ut ut.Translator) error {
			return ut.Add("sheetext", "{0} must be a .xlsx, .xlsm, .xltx or .csv file", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T("sheetext", fe.Field())
			return msg
		},
	)
}
