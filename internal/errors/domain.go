package errors

var (
	ErrInvalidTransition = &DomainError{
		Code:    "INVALID_TRANSITION",
		Message: "account status transition not allowed",
	}
	ErrVendorNotApproved = &DomainError{
		Code:    "VENDOR_NOT_APPROVED",
		Message: "vendor is not approved",
	}
	ErrVendorPending = &DomainError{
		Code:    "VENDOR_PENDING",
		Message: "vendor application is pending review",
	}
	ErrAccountBlocked = &DomainError{
		Code:    "ACCOUNT_BLOCKED",
		Message: "account is blocked",
	}
	ErrAccountSuspended = &DomainError{
		Code:    "ACCOUNT_SUSPENDED",
		Message: "account is suspended",
	}
	ErrOutOfStock = &DomainError{
		Code:    "OUT_OF_STOCK",
		Message: "insufficient stock for product",
	}
	ErrInvalidQuantity = &DomainError{
		Code:    "INVALID_QUANTITY",
		Message: "quantity must be between 1 and 99",
	}
	ErrDiscountNotUsable = &DomainError{
		Code:    "DISCOUNT_NOT_USABLE",
		Message: "discount code is expired, exhausted or inactive",
	}
	ErrOrderNotCancellable = &DomainError{
		Code:    "ORDER_NOT_CANCELLABLE",
		Message: "only pending orders can be cancelled",
	}
	ErrInvalidOrderStatus = &DomainError{
		Code:    "INVALID_ORDER_STATUS",
		Message: "order status transition not allowed",
	}
	ErrNotOwner = &DomainError{
		Code:    "NOT_OWNER",
		Message: "resource does not belong to caller",
	}
)
