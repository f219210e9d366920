package domain

// Transaction types. Every balance-affecting event appends exactly one
// transaction row of one of these types.
const (
	TxTypeReferral         = "referral"
	TxTypeBonus            = "bonus"
	TxTypeWithdrawal       = "withdrawal"
	TxTypeRefund           = "refund"
	TxTypePurchase         = "purchase"
	TxTypeContactGain      = "contact_gain"
	TxTypeAdvertisement    = "advertisement"
	TxTypeWithdrawalBypass = "withdrawal_bypass"
)

// Approval states shared by withdrawals, payments and advertisements.
// pending is the only state transitions are allowed out of.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Transaction rows are written as completed; referral rows as active.
const (
	StatusCompleted = "completed"
	StatusActive    = "active"
)

const (
	ContactGainInactive = "inactive"
	ContactGainActive   = "active"
)

// Payment (fee-unlock) request types.
const (
	PaymentTypeContactGain      = "contact_gain"
	PaymentTypeAdvertisement    = "advertisement"
	PaymentTypeWithdrawalBypass = "withdrawal_bypass"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Settings keys. Values are stored as strings and parsed per read.
const (
	SettingReferralAmount            = "referralAmount"
	SettingMinimumWithdrawal         = "minimumWithdrawal"
	SettingWithdrawalFee             = "withdrawalFee"
	SettingMinReferralsForWithdrawal = "minimumReferralsForWithdrawal"
	SettingWithdrawalBypassFee       = "withdrawalBypassFee"
	SettingContactGainFee            = "contactGainFee"
	SettingReferralsForContactGain   = "referralsForContactGain"
	SettingAdvertisementFee          = "advertisementFee"
	SettingDailyBonus                = "dailyBonus"
	SettingMaintenanceMode           = "maintenanceMode"
	SettingTotalPayout               = "totalPayout"
)

// DefaultSettings are seeded on first start and used as fallbacks when a key
// is missing or unparsable. Amounts are whole naira.
func DefaultSettings() map[string]string {
	return map[string]string{
		SettingReferralAmount:            "1000",
		SettingMinimumWithdrawal:         "15000",
		SettingWithdrawalFee:             "100",
		SettingMinReferralsForWithdrawal: "20",
		SettingWithdrawalBypassFee:       "2500",
		SettingContactGainFee:            "2000",
		SettingReferralsForContactGain:   "15",
		SettingAdvertisementFee:          "3000",
		SettingDailyBonus:                "500",
		SettingMaintenanceMode:           "false",
		SettingTotalPayout:               "0",
	}
}

// AdminBootstrapCode grants admin when used as the referral code at
// registration.
const AdminBootstrapCode = "vesta1212"
