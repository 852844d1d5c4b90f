package logs

var ToJournalKey = toJournalKey
