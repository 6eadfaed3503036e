// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

package auth

// JSON field names shared by the handlers in this package.
const (
	FieldUsername         = "username"
	FieldEmail            = "email"
	FieldConfirmationCode = "confirmation_code"
	FieldToken            = "token"
)
