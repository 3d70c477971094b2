package cli

// ANSI color codes used by the wizard and server banner. The check result
// line is never colored.
const (
	Reset = "\033[0m"

	Red     = "\033[31m"
	Green   = "\033[32m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[37m"
	Gray    = "\033[90m"

	Bold = "\033[1m"
	Dim  = "\033[2m"
)

var (
	HeaderStyle  = Cyan + Bold
	TitleStyle   = Magenta + Bold
	SuccessStyle = Green + Bold
	ErrorStyle   = Red + Bold
	LabelStyle   = Cyan
	ValueStyle   = White + Bold
	DimStyle     = Dim
	MetaStyle    = Gray
)

func FormatHeader(text string) string {
	return HeaderStyle + text + Reset
}

func FormatTitle(text string) string {
	return TitleStyle + text + Reset
}

func FormatSuccess(text string) string {
	return SuccessStyle + text + Reset
}

func FormatError(text string) string {
	return ErrorStyle + text + Reset
}

func FormatDim(text string) string {
	return DimStyle + text + Reset
}

func FormatMeta(text string) string {
	return MetaStyle + text + Reset
}

// Format a label-value pair
func FormatLabelValue(label, value string) string {
	return LabelStyle + label + Reset + " " + ValueStyle + value + Reset
}
