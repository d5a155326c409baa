// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants holds the fixed values shared across the Traders service:
server timings, rate limits, header names, token settings and Redis keys.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "traders-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout must exceed the contact acknowledgement delay.
	DefaultWriteTimeout = 15 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 10 * time.Second

	// ShutdownTimeout is how long in-flight requests get during shutdown.
	ShutdownTimeout = 20 * time.Second

	// StartupTimeout bounds connecting to PostgreSQL and Redis.
	StartupTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	DefaultRateLimitRPS      = 50.0
	DefaultRateLimitBurst    = 100
	RateLimitCleanupInterval = 1 * time.Minute
	RateLimitClientTTL       = 3 * time.Minute
)

// # Authentication

const (
	// AuthIssuer is the 'iss' claim of dashboard tokens.
	AuthIssuer = "traders.app"

	// DefaultTokenTTL is the lifetime of tokens minted by tradersctl.
	DefaultTokenTTL = 12 * time.Hour
)

// # Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXVisitorID    = "X-Visitor-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
	HeaderAuthorization = "Authorization"
)

// # JSON Field Identifiers

const (
	FieldError = "error"
	FieldCode  = "code"
)

// # Redis Keys

const (
	// RedisPrefixItemLikes holds the set of visitors who liked a gallery item.
	RedisPrefixItemLikes = "gallery:likes:item:"

	// RedisPrefixVisitorLikes holds the set of gallery items a visitor liked.
	RedisPrefixVisitorLikes = "gallery:likes:visitor:"

	// RedisChannelNotifications is the pub/sub channel for notifications.
	RedisChannelNotifications = "traders:notifications"
)
