package upstream

// DomainConfig is the inner config block of the home payload. Domain
// selects the sensor display overrides.
type DomainConfig struct {
	Domain    string `json:"domain"`
	LoginText string `json:"loginText"`
	Hero      string `json:"hero"`
}

// Feature is one marketing feature card in the home payload.
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// HowItWorksStep is one step of the home payload's walkthrough section.
type HowItWorksStep struct {
	Step        int    `json:"step"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Theme is the presentation palette from the home payload.
type Theme struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Background string `json:"background"`
}

// SiteContent is the full home payload: domain selection plus the static
// content the presentation layer renders.
type SiteContent struct {
	Config     DomainConfig     `json:"config"`
	Features   []Feature        `json:"features"`
	HowItWorks []HowItWorksStep `json:"howItWorks"`
	Theme      Theme            `json:"theme"`
}

// deviceConfigWire is the hardware service's device record shape.
type deviceConfigWire struct {
	DeviceID      string `json:"deviceId"`
	ReadableLabel string `json:"readableLabel"`
	DeviceKind    int    `json:"deviceKind"`
	GroupID       int    `json:"groupId"`
}

// configsResponse wraps the device list. A nil Configs pointer means the
// field was absent from the payload, which is distinct from an empty list.
type configsResponse struct {
	Configs *[]deviceConfigWire `json:"configs"`
}

// OperatorMessage is one message left for operators via the accounts
// service.
type OperatorMessage struct {
	MessageID   string `json:"message_id"`
	SenderEmail string `json:"sender_email"`
	Body        string `json:"left_message"`
	TimeSent    string `json:"time_sent"`
}

// messagesResponse wraps the operator message list.
type messagesResponse struct {
	Messages []OperatorMessage `json:"messages"`
}

// Session is the accounts service's view of a validated session token.
type Session struct {
	UID       string `json:"uid"`
	Authority string `json:"authority"`
}
