package commands

const (
	_etc = "/usr/local/etc/sheets-invoices"

	DEFAULT_CONFIG      = _etc + "/sheets-invoices.yaml"
	DEFAULT_CREDENTIALS = _etc + "/.google/credentials.json"
)
