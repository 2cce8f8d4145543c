package common

// StorageKey is the fixed key under which the local backend keeps the
// serialized record list.
const StorageKey = "registre_nominal_users"

// ClearSentinelID is the id that the remote delete-all predicate
// ("id <> sentinel") relies on never being assigned to a record.
const ClearSentinelID = "0"
