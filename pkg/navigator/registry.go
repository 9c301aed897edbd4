package navigator

// Section is one of the mutually exclusive top-level screens
type Section string

const (
	SectionStock     Section = "stock"
	SectionReminders Section = "reminders"
	SectionEvents    Section = "events"
	SectionScan      Section = "scan"
	SectionProfile   Section = "profile"
)

// DefaultSection is the screen shown after authentication
const DefaultSection = SectionStock

// Sections lists every registered section in display order
func Sections() []Section {
	return []Section{
		SectionStock,
		SectionReminders,
		SectionEvents,
		SectionScan,
		SectionProfile,
	}
}

// Valid reports whether s names a registered section
func Valid(s Section) bool {
	switch s {
	case SectionStock, SectionReminders, SectionEvents, SectionScan, SectionProfile:
		return true
	}
	return false
}

// Title returns the display title for a section
func Title(s Section) string {
	switch s {
	case SectionStock:
		return "Stock"
	case SectionReminders:
		return "Payment Reminders"
	case SectionEvents:
		return "Vendor Events"
	case SectionScan:
		return "Scan Receipt"
	case SectionProfile:
		return "Profile"
	}
	return string(s)
}
