package models

type VariantStatus int

const (
	SizeNotFound VariantStatus = iota
	SoldOut
	Available
)

func (s VariantStatus) String() string {
	switch s {
	case SoldOut:
		return "SoldOut"
	case Available:
		return "Available"
	default:
		return "SizeNotFound"
	}
}
