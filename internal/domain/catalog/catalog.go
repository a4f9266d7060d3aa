// Package catalog holds the fixed vocabularies studios pick from.
package catalog

type EventType string

const (
	EventWedding      EventType = "Wedding"
	EventBirthday     EventType = "Birthday"
	EventCorporate    EventType = "Corporate"
	EventOutdoorShoot EventType = "Outdoor Shoot"
	EventPortrait     EventType = "Portrait"
	EventProduct      EventType = "Product"
	EventOther        EventType = "Other"
)

var EventTypes = []EventType{
	EventWedding,
	EventBirthday,
	EventCorporate,
	EventOutdoorShoot,
	EventPortrait,
	EventProduct,
	EventOther,
}

func (t EventType) Valid() bool {
	return contains(EventTypes, t)
}

type PaymentMethod string

const (
	MethodCash         PaymentMethod = "Cash"
	MethodUPI          PaymentMethod = "UPI"
	MethodBankTransfer PaymentMethod = "Bank Transfer"
	MethodCard         PaymentMethod = "Card"
	MethodOther        PaymentMethod = "Other"
)

var PaymentMethods = []PaymentMethod{
	MethodCash,
	MethodUPI,
	MethodBankTransfer,
	MethodCard,
	MethodOther,
}

func (m PaymentMethod) Valid() bool {
	return contains(PaymentMethods, m)
}

// DefaultPaymentMethod is used when a payment arrives without a method.
const DefaultPaymentMethod = MethodCash

type ExpenseCategory string

const (
	ExpenseEquipment    ExpenseCategory = "Equipment"
	ExpenseTravel       ExpenseCategory = "Travel"
	ExpenseEditing      ExpenseCategory = "Editing"
	ExpenseStaffPayment ExpenseCategory = "Staff Payment"
	ExpenseRent         ExpenseCategory = "Rent"
	ExpensePrint        ExpenseCategory = "Print"
	ExpenseMarketing    ExpenseCategory = "Marketing"
	ExpenseOther        ExpenseCategory = "Other"
)

var ExpenseCategories = []ExpenseCategory{
	ExpenseEquipment,
	ExpenseTravel,
	ExpenseEditing,
	ExpenseStaffPayment,
	ExpenseRent,
	ExpensePrint,
	ExpenseMarketing,
	ExpenseOther,
}

func (c ExpenseCategory) Valid() bool {
	return contains(ExpenseCategories, c)
}

func contains[T comparable](set []T, v T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
