// Package currency maps ISO-4217 currency codes to display symbols.
package currency

// symbols covers the codes with a conventional single-glyph symbol. Codes
// fall through unchanged when absent, so the table only needs the common
// ones.
var symbols = map[string]string{
	"AUD": "$",
	"BRL": "R$",
	"CAD": "$",
	"CHF": "CHF",
	"CNY": "¥",
	"CRC": "₡",
	"CZK": "Kč",
	"DKK": "kr",
	"EUR": "€",
	"GBP": "£",
	"HKD": "$",
	"HUF": "Ft",
	"IDR": "Rp",
	"ILS": "₪",
	"INR": "₹",
	"JPY": "¥",
	"KRW": "₩",
	"MXN": "$",
	"MYR": "RM",
	"NGN": "₦",
	"NOK": "kr",
	"NZD": "$",
	"PHP": "₱",
	"PLN": "zł",
	"RUB": "₽",
	"SEK": "kr",
	"SGD": "$",
	"THB": "฿",
	"TRY": "₺",
	"TWD": "NT$",
	"UAH": "₴",
	"USD": "$",
	"VND": "₫",
	"ZAR": "R",
}

// Symbol returns the display symbol for a currency code. Unrecognized codes
// pass through unchanged.
func Symbol(code string) string {
	if s, ok := symbols[code]; ok {
		return s
	}
	return code
}
