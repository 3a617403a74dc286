package redis

// Key layout, unchanged from the deployed data set so existing records keep
// working:
//
//	participant:<email>       canonical record, keyed by normalized email
//	participant:id:<id>       same record, keyed by id
//	participants:list         ordered id index, newest first
//	site:statistics           shared counter record
//	stats:daily:<date>        per-day registration counter, 30d expiry
//	role:set:<role>           vote ledger membership set per role
//	role:set:voted            global dedup set
//	visitors:total            visit counter
//	visitors:daily:<date>     per-day visit counter, 30d expiry

const (
	keyParticipantsList = "participants:list"
	keySiteStats        = "site:statistics"
	keyVotedSet         = "role:set:voted"
	keyVisitorsTotal    = "visitors:total"
)

func keyParticipantByEmail(email string) string {
	return "participant:" + email
}

func keyParticipantByID(id string) string {
	return "participant:id:" + id
}

func keyDailyStats(date string) string {
	return "stats:daily:" + date
}

func keyRoleSet(role string) string {
	return "role:set:" + role
}

func keyVisitorsDaily(date string) string {
	return "visitors:daily:" + date
}
