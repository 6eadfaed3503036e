// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

/*
Package account handles the authenticated user's own profile (/users/me).

It lets a signed-in user read and partially update their identity data.

# Architecture

  - Domain: This package depends on the auth package for the User entity and
    its repository contract; there is no separate storage implementation.
  - Security: All endpoints require authentication. Role is never writable
    here — whatever a client submits, the stored role wins.
*/
package account
