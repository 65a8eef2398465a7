// Package currency formats amounts the way the storefront displays them.
package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Vietnamese)

// FormatVND renders 2500000 as "2.500.000 ₫".
func FormatVND(amount int64) string {
	return printer.Sprintf("%d", amount) + " ₫"
}
