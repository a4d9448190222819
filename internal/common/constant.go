package common

// AngelName is the person name for which the derived angel flag is true.
const AngelName = "Angel"

// Phone filter values accepted by the allPersons query.
const (
	PhoneFilterYes = "YES"
	PhoneFilterNo  = "NO"
)
