package resource

// Quotas are the remaining allowances on an account. A nil value means unlimited.
type Quotas struct {
	TemplatesLeft            *int `json:"templates_left"`
	APISignatureRequestsLeft *int `json:"api_signature_requests_left"`
	DocumentsLeft            *int `json:"documents_left"`
	SMSVerificationsLeft     *int `json:"sms_verifications_left"`
}

// Account is a snapshot of the account fields returned by the API.
type Account struct {
	AccountID    string `json:"account_id"`
	EmailAddress string `json:"email_address"`
	CallbackURL  string `json:"callback_url"`
	RoleCode     string `json:"role_code"`
	Locale       string `json:"locale"`
	IsLocked     bool   `json:"is_locked"`
	IsPaidHS     bool   `json:"is_paid_hs"`
	IsPaidHF     bool   `json:"is_paid_hf"`
	Quotas       Quotas `json:"quotas"`

	base `json:"-"`
}

// NewAccount builds an Account from a decoded response. The object may be
// nested under "account", as the API returns it, or passed directly.
func NewAccount(data map[string]interface{}) (*Account, error) {
	object, err := unwrap(data, "account")
	if err != nil {
		return nil, err
	}

	b, err := newBase(object)
	if err != nil {
		return nil, err
	}

	account := &Account{base: b}
	if err := decode(b.raw, account); err != nil {
		return nil, err
	}
	return account, nil
}
