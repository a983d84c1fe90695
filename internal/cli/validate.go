package cli

import (
	"errors"
	"strings"
)

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("không được để trống")
	}
	return nil
}
