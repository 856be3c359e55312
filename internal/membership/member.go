package membership

// Member is the membership summary shown on the manage screen.
type Member struct {
	ID              string
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	MembershipType  string
	Status          string
	Barcode         string
	LicensePlate    string
	State           string
	HomeLocation    string
	NextBillingDate string
	LastVisit       string
}

// MockMember stands in until member records come from a backend.
var MockMember = Member{
	ID:              "12345",
	FirstName:       "John",
	LastName:        "Doe",
	Email:           "john.doe@example.com",
	Phone:           "(123) 456-7890",
	MembershipType:  "Premium Unlimited",
	Status:          "Active",
	Barcode:         "EE-12345-6789",
	LicensePlate:    "ABC123",
	State:           "CA",
	HomeLocation:    "Downtown",
	NextBillingDate: "06/01/2025",
	LastVisit:       "05/01/2025",
}

// Name is the member's full name.
func (m Member) Name() string {
	return m.FirstName + " " + m.LastName
}
