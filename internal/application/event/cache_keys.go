package event

func cacheKeyEventDetails(id string) string {
	return "event:" + id + ":details"
}

// Must stay in sync with the admission engine, which drops this key whenever
// a decision changes the confirmed count.
func cacheKeyConfirmedCount(id string) string {
	return "event:" + id + ":confirmed"
}
