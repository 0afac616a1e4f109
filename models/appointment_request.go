package models

// LocationNotAvailable is sent when no location was resolved before submit
const LocationNotAvailable = "Location not available"

// AppointmentRequest is the lead handed to the delivery channel. It is built
// once per submit from validated form values and never modified afterwards.
type AppointmentRequest struct {
	PatientName      string
	MobileNumber     string
	ResolvedLocation string
	PageName         string
	DomainName       string
}

// NewAppointmentRequest builds a lead, substituting the placeholder when the
// location is still empty.
func NewAppointmentRequest(name, mobile, location, pageName, domainName string) AppointmentRequest {
	if location == "" {
		location = LocationNotAvailable
	}
	return AppointmentRequest{
		PatientName:      name,
		MobileNumber:     mobile,
		ResolvedLocation: location,
		PageName:         pageName,
		DomainName:       domainName,
	}
}

// TemplateParams returns the variables used by the email template
func (r AppointmentRequest) TemplateParams() map[string]string {
	return map[string]string{
		"patient_name":  r.PatientName,
		"mobile_number": r.MobileNumber,
		"location":      r.ResolvedLocation,
		"page_name":     r.PageName,
		"domain_name":   r.DomainName,
	}
}
