package enum

type ComponentCategory string

const (
	CategoryText        ComponentCategory = "text"
	CategoryLayout      ComponentCategory = "layout"
	CategoryInteractive ComponentCategory = "interactive"
	CategoryMedia       ComponentCategory = "media"
	CategoryContent     ComponentCategory = "content"
)

func (t ComponentCategory) String() string {
	return string(t)
}

type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
	ButtonOutline   ButtonVariant = "outline"
)

func (t ButtonVariant) String() string {
	return string(t)
}

type AlertSeverity string

const (
	AlertInfo    AlertSeverity = "info"
	AlertSuccess AlertSeverity = "success"
	AlertWarning AlertSeverity = "warning"
	AlertDanger  AlertSeverity = "danger"
)

func (t AlertSeverity) String() string {
	return string(t)
}
