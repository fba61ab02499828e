package validator

import (
	"ctchen222/Tic-Tac-Toe-AI/internal/bot"
	"ctchen222/Tic-Tac-Toe-AI/internal/game"
	"errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	// Initialize validation
	validate = validator.New(validator.WithRequiredStructEnabled())
	if err := RegisterCustom(validate); err != nil {
		panic(err)
	}
}

func GetValidator() *validator.Validate {
	return validate
}

// RegisterCustom adds the game-specific tags to v:
//
//	difficulty - "easy", "hard" or a non-negative level
//	mark       - "", "X" or "O"
func RegisterCustom(v *validator.Validate) error {
	if err := v.RegisterValidation("difficulty", func(fl validator.FieldLevel) bool {
		_, err := bot.ParseDifficulty(fl.Field().String())
		return err == nil
	}); err != nil {
		return err
	}
	return v.RegisterValidation("mark", func(fl validator.FieldLevel) bool {
		_, err := game.ParseMark(fl.Field().String())
		return err == nil
	})
}

// RegisterBinding installs the custom tags on gin's request validator so
// `binding:"mark"` and `binding:"difficulty"` work in handlers.
func RegisterBinding() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not go-playground/validator")
	}
	return RegisterCustom(v)
}
