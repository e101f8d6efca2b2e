// Package rand produces random data and random file trees for test fixtures.
package rand

import (
	"bytes"
	"math/rand"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/spf13/afero"
)

// Bytes returns a random slice of bytes
func Bytes(n int) []byte {
	return randBytes(n)
}

// LetterString returns a random string picked in the [0-9]|[a-z] range
func LetterString(n int) string {
	return string(randLetterBytes(n))
}

// Tree writes a random tree of files under root, at most depth levels deep,
// and returns the content of each file by path relative to root.
func Tree(fs afero.Fs, root string, files, depth, maxSize int) (map[string][]byte, error) {
	tree := make(map[string][]byte, files)
	for i := 0; i < files; i++ {
		parts := make([]string, 0, depth+1)
		for d := intn(depth + 1); d > 0; d-- {
			parts = append(parts, LetterString(4))
		}
		parts = append(parts, "f"+strconv.Itoa(i)+"-"+LetterString(6)+".bin")
		rel := filepath.Join(parts...)

		content := Bytes(intn(maxSize + 1))
		pth := filepath.Join(root, rel)
		if err := fs.MkdirAll(filepath.Dir(pth), 0o755); err != nil {
			return nil, err
		}
		if err := afero.WriteFile(fs, pth, content, 0o644); err != nil {
			return nil, err
		}
		tree[rel] = content
	}
	return tree, nil
}

var (
	onceSource  sync.Once
	rgen        *rand.Rand
	onceLetters sync.Once
	randMutex   sync.Mutex
)

func seed() {
	src := rand.NewSource(time.Now().UnixNano())
	rgen = rand.New(src) // #nosec
}

func intn(n int) int {
	onceSource.Do(seed)
	randMutex.Lock()
	defer randMutex.Unlock()
	return rgen.Intn(n)
}

func randBytes(n int) []byte {
	onceSource.Do(seed)
	buf := make([]byte, n)
	randMutex.Lock()
	_, _ = rgen.Read(buf)
	randMutex.Unlock()
	return buf
}

var letters []byte

func makeLetters() {
	// pads over 256 locations so any byte indexes a letter: "a" is slightly more frequent
	letters = bytes.Repeat([]byte("abcdefghijklmnopqrstuvwxyz0123456789a"), 7)
}

func randLetterBytes(n int) []byte {
	onceLetters.Do(makeLetters)
	buf := randBytes(n)
	for i, b := range buf {
		buf[i] = letters[b]
	}
	return buf
}
