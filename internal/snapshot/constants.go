package snapshot

// CurrentVersion is the wire version written by Encode
const CurrentVersion = 1

// LegacyVersion is assumed when a document carries no version field
const LegacyVersion = 0

// Wire keys
const (
	keyVersion       = "version"
	keyArcCoins      = "arcCoins"
	keyXP            = "xp"
	keyLevel         = "level"
	keyNextLevelXP   = "nextLevelXp"
	keySeeds         = "seeds"
	keyHarvest       = "harvest"
	keyProduce       = "produce"
	keyStats         = "stats"
	keyClaimedQuests = "claimedQuests"
	keyField         = "field"
	keyBarnSlots     = "barnSlots"
)

// Warning formats
const (
	WarnUnknownField     = "unknown field %q ignored"
	WarnMalformedField   = "field %q is malformed and was skipped"
	WarnMalformedEntry   = "%s[%q] is malformed and was skipped"
	WarnMalformedElement = "%s[%d] is malformed and was reset"
	WarnFutureVersion    = "snapshot version %d is newer than %d; applying recognised fields only"
)
