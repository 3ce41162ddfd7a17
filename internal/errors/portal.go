package errors

var (
	ErrServiceNotFound = &DomainError{
		Kind:    KindNotFound,
		Code:    "SERVICE_NOT_FOUND",
		Message: "service not found",
	}
	ErrServiceNotAssigned = &DomainError{
		Kind:    KindForbidden,
		Code:    "SERVICE_NOT_ASSIGNED",
		Message: "service not assigned to partner",
	}
	ErrServiceReferenced = &DomainError{
		Kind:    KindInvalidState,
		Code:    "SERVICE_REFERENCED",
		Message: "service has recorded transactions and cannot be deleted; deactivate it instead",
	}
	ErrTransactionNotFound = &DomainError{
		Kind:    KindNotFound,
		Code:    "TRANSACTION_NOT_FOUND",
		Message: "transaction not found",
	}
	ErrAlreadyDecided = &DomainError{
		Kind:    KindInvalidState,
		Code:    "ALREADY_DECIDED",
		Message: "transaction already decided",
	}
	ErrPartnerNotFound = &DomainError{
		Kind:    KindNotFound,
		Code:    "PARTNER_NOT_FOUND",
		Message: "partner not found",
	}
	ErrEmailTaken = &DomainError{
		Kind:    KindConflict,
		Code:    "EMAIL_TAKEN",
		Message: "an account with this email already exists",
	}
	ErrForbidden = &DomainError{
		Kind:    KindForbidden,
		Code:    "FORBIDDEN",
		Message: "insufficient permissions",
	}
)
