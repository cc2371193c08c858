package commands

const (
	_etc = "/usr/local/etc/com.github.lexoffice-tools/sheets-invoices"

	DEFAULT_CONFIG      = _etc + "/sheets-invoices.yaml"
	DEFAULT_CREDENTIALS = _etc + "/.google/credentials.json"
)
