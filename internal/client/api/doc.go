// Package api talks to the remote authentication/profile REST service.
//
// # Overview
//
// Client is the transport-agnostic contract used by the services:
// Login, Register, GetProfile and UpdateProfile. HTTPClient implements it
// over JSON/HTTP. Every request carries an X-Request-ID and, when
// authenticated, the bearer token in the x-access-token header.
//
// # Error Handling
//
//   - *ResponseError: the server answered with a non-2xx status. Message
//     and ErrorText hold the body's "message" and "error" fields.
//   - ErrUnauthorized: matched by errors.Is for any 401 ResponseError.
//   - ErrUnavailable: the request never got an answer (DNS, connect,
//     timeout, cancelled context).
//   - ErrBadResponse: a 2xx answer whose body could not be decoded.
//
// Requests are never retried here.
package api
