// Package mailer sends the transactional emails over SMTP, or to the log when
// no relay is configured, rendering bodies from embedded HTML templates.
package mailer
