package services

import "time"

const (
	KeyBalance  = "fairmines:balance:%s"
	KeySequence = "fairmines:sequence:%s"

	// Guest sessions are short-lived; their scalars expire with them.
	TTLSession = 7 * 24 * time.Hour
)
