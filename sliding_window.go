package lzhf

import (
	"errors"
	"fmt"
	"io"
)

// slidingWindow is the match-finding state for one compression run: a ring
// buffer of already-coded bytes (the window), a ring buffer of raw input
// ahead of the coding point (the look-ahead), and hash chains indexing every
// window slot by the hash of the hashContextLen bytes starting there.
//
// Chains live in parallel arrays: lzhash holds the newest slot per bucket,
// lznext and lzprev link slots within a bucket, newest first. Every window
// slot sits on exactly one chain at all times; sliding removes the entries
// whose hashed context a token rewrite touches and reinserts them after the
// copy.

// matchCandidate is one match finder result: an absolute window position and
// a byte length. A length below minMatchLen means "emit a literal instead".
type matchCandidate struct {
	pos int
	len int
}

type slidingWindow struct {
	winBits   int
	winSize   int // 1 << winBits
	winMask   int
	patSize   int // winSize / 2
	patMask   int
	hashShift uint // winBits - 8

	win []byte // window ring buffer, winSize bytes
	pat []byte // look-ahead ring buffer, patSize bytes

	winCnt int // window slot the next coded byte lands in
	patCnt int // look-ahead slot of the next byte to code
	bufCnt int // valid bytes in the look-ahead

	lzhash []int32 // bucket heads, winSize buckets
	lznext []int32 // next (older) slot in the same bucket
	lzprev []int32 // previous (newer) slot, lzNull at the head

	totalIn int64 // bytes pulled from the source so far
	srcDone bool  // source hit EOF, later refills read nothing

	// cost of the last search, checked by the bound tests
	visited int
	scored  int
}

// alloc sizes all buffers for the given window exponent.
func (s *slidingWindow) alloc(bits int) {
	s.winBits = bits
	s.winSize = 1 << bits
	s.winMask = s.winSize - 1
	s.patSize = s.winSize >> 1
	s.patMask = s.patSize - 1
	s.hashShift = uint(bits - 8)
	s.win = make([]byte, s.winSize)
	s.pat = make([]byte, s.patSize)
	s.lzhash = make([]int32, s.winSize)
	s.lznext = make([]int32, s.winSize)
	s.lzprev = make([]int32, s.winSize)
}

// reset clears the buffers and rebuilds the chains for the zero-filled
// window: every slot hashes the same context, so all of them stack up in
// bucket 0 with the highest slot as the newest entry.
func (s *slidingWindow) reset() {
	clear(s.win)
	for i := range s.lzhash {
		s.lzhash[i] = lzNull
		s.lznext[i] = lzNull
		s.lzprev[i] = lzNull
	}
	for i := 0; i < s.winSize; i++ {
		s.insert(s.hashWin(i), i)
	}
	s.winCnt = 0
	s.patCnt = 0
	s.bufCnt = 0
	s.totalIn = 0
	s.srcDone = false
	s.visited = 0
	s.scored = 0
}

// hash mixes the hashContextLen bytes of buf starting at pos (a ring of
// mask+1 bytes) into a bucket index. Window slots and the look-ahead head use
// the same mix, so a pattern hash looks up window chains directly.
func (s *slidingWindow) hash(buf []byte, pos, mask int) int {
	return (int(buf[pos&mask])<<s.hashShift ^
		int(buf[(pos+1)&mask])<<7 ^
		int(buf[(pos+2)&mask])<<4 ^
		int(buf[(pos+3)&mask])) & s.winMask
}

func (s *slidingWindow) hashWin(pos int) int { return s.hash(s.win, pos, s.winMask) }
func (s *slidingWindow) hashPat() int        { return s.hash(s.pat, s.patCnt, s.patMask) }

// insert pushes window slot pos onto the head of bucket h.
func (s *slidingWindow) insert(h, pos int) {
	head := s.lzhash[h]
	s.lznext[pos] = head
	s.lzprev[pos] = lzNull
	if head != lzNull {
		s.lzprev[head] = int32(pos)
	}
	s.lzhash[h] = int32(pos)
}

// remove unlinks window slot pos from bucket h.
func (s *slidingWindow) remove(h, pos int) {
	next := s.lznext[pos]
	prev := s.lzprev[pos]
	if next != lzNull {
		s.lzprev[next] = prev
	}
	if prev != lzNull {
		s.lznext[prev] = next
	} else {
		s.lzhash[h] = next
	}
}

// fill primes the look-ahead from src before the first token.
func (s *slidingWindow) fill(src io.Reader) error {
	n, err := s.refill(s.patSize, src)
	if err != nil {
		return err
	}
	s.bufCnt = n
	return nil
}

// refill reads up to want bytes into the look-ahead slots starting at patCnt,
// the slots the last token consumed. While the source lasts the buffer stays
// full; once it hits EOF refills come up short and bufCnt shrinks.
func (s *slidingWindow) refill(want int, src io.Reader) (int, error) {
	if s.srcDone {
		return 0, nil
	}
	total := 0
	pos := s.patCnt
	for total < want {
		end := min(pos+want-total, s.patSize)
		n, err := io.ReadFull(src, s.pat[pos:end])
		total += n
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				s.srcDone = true
				break
			}
			return total, fmt.Errorf("lzhf: read input: %w", err)
		}
		pos = (pos + n) & s.patMask
	}
	s.totalIn += int64(total)
	return total, nil
}

// findBestMatch walks the hash chain for the look-ahead head and returns the
// longest match found, newest candidates first. Each candidate is first
// matched right to left over the current best length plus one byte, so almost
// every non-improving candidate fails on the first compare; survivors extend
// forward, capped by the look-ahead. Cost is bounded: at most maxSearchVisits
// chain nodes and maxSearchScores improvements per call.
//
// Near EOF the hashed context may cover stale look-ahead bytes; that is
// harmless because matches are capped to bufCnt and anything shorter than
// minMatchLen is coded as a literal anyway.
func (s *slidingWindow) findBestMatch() matchCandidate {
	var best matchCandidate
	s.visited = 0
	s.scored = 0
	if s.bufCnt <= 1 {
		return best
	}
	for node := s.lzhash[s.hashPat()]; node != lzNull; node = s.lznext[node] {
		pos := int(node)

		j := (s.patCnt + best.len) & s.patMask
		k := best.len
		ok := true
		for {
			if s.pat[j] != s.win[(pos+k)&s.winMask] {
				ok = false
				break
			}
			if j == 0 {
				j = s.patSize - 1
			} else {
				j--
			}
			k--
			if k < 0 {
				break
			}
		}

		if ok {
			k = best.len + 1
			if k < s.bufCnt {
				j = (s.patCnt + k) & s.patMask
				for s.pat[j] == s.win[(pos+k)&s.winMask] {
					k++
					if k >= s.bufCnt {
						break
					}
					j = (j + 1) & s.patMask
				}
			}
			best.pos = pos
			best.len = k
			s.scored++
			if k == s.bufCnt || s.scored == maxSearchScores {
				break
			}
		}

		s.visited++
		if s.visited == maxSearchVisits {
			break
		}
	}
	return best
}

// slide commits length coded bytes. The window slots being overwritten leave
// their chains together with the hashContextLen-1 slots just before winCnt,
// whose hashed context straddles the write; the bytes are copied in from the
// look-ahead; every touched slot is rehashed and reinserted; and the
// look-ahead refills from src. The order is load-bearing: removing entries
// after the copy would hash the new content and unlink the wrong ones.
func (s *slidingWindow) slide(length int, src io.Reader) error {
	start := s.winCnt - (hashContextLen - 1)
	if start < 0 {
		start += s.winSize
	}
	span := length + hashContextLen - 1
	for i := 0; i < span; i++ {
		s.remove(s.hashWin(start+i), (start+i)&s.winMask)
	}
	for i := 0; i < length; i++ {
		s.win[(s.winCnt+i)&s.winMask] = s.pat[(s.patCnt+i)&s.patMask]
	}
	for i := 0; i < span; i++ {
		s.insert(s.hashWin(start+i), (start+i)&s.winMask)
	}
	n, err := s.refill(length, src)
	if err != nil {
		return err
	}
	s.bufCnt -= length - n
	s.winCnt = (s.winCnt + length) & s.winMask
	s.patCnt = (s.patCnt + length) & s.patMask
	return nil
}
