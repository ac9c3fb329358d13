package payment

import (
	"errors"
	"strings"
)

var (
	ErrInvalidType = errors.New("invalid payment type")
	ErrEmptyID     = errors.New("payment method id cannot be empty")
)

type Type string

const (
	TypeCreditCard   Type = "CREDIT_CARD"
	TypeDebitCard    Type = "DEBIT_CARD"
	TypeEWallet      Type = "E_WALLET"
	TypeBankTransfer Type = "BANK_TRANSFER"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeCreditCard, TypeDebitCard, TypeEWallet, TypeBankTransfer:
		return true
	default:
		return false
	}
}

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}

// Method is a static catalog entry, not owned by any user.
type Method struct {
	id   string
	name string
	typ  Type
	icon string
}

func NewMethod(id, name string, typ Type, icon string) (*Method, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrEmptyID
	}
	if !typ.IsValid() {
		return nil, ErrInvalidType
	}
	return &Method{id: id, name: name, typ: typ, icon: icon}, nil
}

func (m *Method) ID() string   { return m.id }
func (m *Method) Name() string { return m.name }
func (m *Method) Type() Type   { return m.typ }
func (m *Method) Icon() string { return m.icon }
