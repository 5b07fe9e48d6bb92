package menu

// Playlist keeps background music playing by handing out the next track each
// time the previous one has finished.
type Playlist struct {
	tracks []string
	cursor int
}

// NewPlaylist 创建播放列表，start 为起始曲目（对长度取模）
func NewPlaylist(tracks []string, start int) *Playlist {
	p := &Playlist{tracks: append([]string(nil), tracks...)}
	if len(p.tracks) > 0 {
		p.cursor = ((start % len(p.tracks)) + len(p.tracks)) % len(p.tracks)
	}
	return p
}

// Tick returns the track to start when nothing is playing and advances the
// cursor modulo the playlist length. It never returns a track while music is
// playing or when the playlist is empty.
func (p *Playlist) Tick(playing bool) (string, bool) {
	if playing || len(p.tracks) == 0 {
		return "", false
	}
	track := p.tracks[p.cursor]
	p.cursor = (p.cursor + 1) % len(p.tracks)
	return track, true
}

// Cursor 返回下一首曲目的索引
func (p *Playlist) Cursor() int {
	return p.cursor
}

// Len 返回曲目数量
func (p *Playlist) Len() int {
	return len(p.tracks)
}
