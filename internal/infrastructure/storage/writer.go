package storage

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

const (
	MagicHeader string = `GGRL` // 4 байта
	Version1    uint32 = 1

	ledgerFile = "runs.ggrl"
)

// Исходы забега.
const (
	OutcomeDeath   uint8 = 1 // Смерть в бою или в проклятой гробнице
	OutcomeCashOut uint8 = 2 // Игрок забрал банк и сбежал
)

// FileHeader - заголовок файла летописи. Пишется один раз при создании.
type FileHeader struct {
	Magic   [4]byte // 4 байта
	Version uint32  // 4 байта
}

// RecordHeader - заголовок каждой записи о завершенном забеге.
// binary.Write умеет писать это целиком, так как тут нет слайсов и строк,
// только числа фиксированной ширины.
type RecordHeader struct {
	Timestamp int64 // 8 байт, Unix-секунды
	Seed      int64 // 8 байт
	Room      int32 // 4 байта, достигнутая комната
	Banked    int64 // 8 байт, золото на момент развязки
	Fragments int32 // 4 байта, заработанные фрагменты
	Outcome   uint8 // 1 байт
	NameLen   uint8 // 1 байт
}

// RunRecord - одна строка летописи в памяти.
type RunRecord struct {
	Timestamp int64
	Seed      int64
	Room      int
	Banked    int
	Fragments int
	Outcome   uint8
	Username  string
}

// Ledger - летопись завершенных забегов: простой бинарный append-only
// файл. Версионируется заголовком, чтобы старые файлы не читались молча
// неправильно после смены формата.
type Ledger struct {
	mu   sync.Mutex
	path string
}

func NewLedger(dir string) (*Ledger, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create ledger dir: %w", err)
	}
	return &Ledger{path: filepath.Join(dir, ledgerFile)}, nil
}

// Append дописывает запись в конец файла. Заголовок файла пишется
// при первой записи.
func (l *Ledger) Append(rec RunRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	if info.Size() == 0 {
		header := FileHeader{Version: Version1}
		copy(header.Magic[:], MagicHeader) // Копируем строку в массив [4]byte
		if err := binary.Write(f, binary.LittleEndian, &header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	return writeRecord(f, rec)
}

func writeRecord(w io.Writer, rec RunRecord) error {
	nameBytes := []byte(rec.Username)
	if len(nameBytes) > 255 {
		return fmt.Errorf("username too long: %d", len(nameBytes))
	}

	header := RecordHeader{
		Timestamp: rec.Timestamp,
		Seed:      rec.Seed,
		Room:      int32(rec.Room),
		Banked:    int64(rec.Banked),
		Fragments: int32(rec.Fragments),
		Outcome:   rec.Outcome,
		NameLen:   uint8(len(nameBytes)),
	}

	// Пишем заголовок записи одной командой
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return err
	}

	// Пишем динамические данные (имя)
	if _, err := w.Write(nameBytes); err != nil {
		return err
	}
	return nil
}
