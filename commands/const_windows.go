package commands

const (
	_etc = `C:\ProgramData\sheets-invoices`

	DEFAULT_CONFIG      = _etc + `\sheets-invoices.yaml`
	DEFAULT_CREDENTIALS = _etc + `\.google\credentials.json`
)
