package enum

type TemplateCategory string

const (
	TemplateGeneral    TemplateCategory = "general"
	TemplateMarketing  TemplateCategory = "marketing"
	TemplateNewsletter TemplateCategory = "newsletter"
	TemplateOnboarding TemplateCategory = "onboarding"
	TemplateInvoice    TemplateCategory = "invoice"
	TemplateCustom     TemplateCategory = "custom"
)

func (t TemplateCategory) String() string {
	return string(t)
}

func (t TemplateCategory) IsValid() bool {
	switch t {
	case TemplateGeneral, TemplateMarketing, TemplateNewsletter, TemplateOnboarding, TemplateInvoice, TemplateCustom:
		return true
	}
	return false
}
