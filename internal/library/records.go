package library

// Podcast is one show from the metadata store.
type Podcast struct {
	ID     int64
	Title  string
	Author string
}

// Episode is one episode row from the metadata store. PubDate is seconds
// since the store's reference instant (2001-01-01T00:00:00 UTC) and is only
// meaningful when PubDateKnown is set. GUID may be empty and is not
// guaranteed unique within a podcast.
type Episode struct {
	Title        string
	PubDate      int64
	PubDateKnown bool
	GUID         string
}
