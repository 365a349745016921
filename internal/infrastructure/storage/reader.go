package storage

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// Load читает всю летопись целиком. Отсутствие файла - пустая летопись.
func (l *Ledger) Load() ([]RunRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	return readRecords(f)
}

func readRecords(r io.Reader) ([]RunRecord, error) {
	// 1. Читаем заголовок файла целиком
	var header FileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Валидация
	if string(header.Magic[:]) != MagicHeader {
		return nil, fmt.Errorf("invalid magic")
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("unsupported version: %d (expected %d)", header.Version, Version1)
	}

	// 2. Читаем записи до конца файла
	var records []RunRecord
	for {
		var rh RecordHeader
		if err := binary.Read(r, binary.LittleEndian, &rh); err != nil {
			if errors.Is(err, io.EOF) {
				return records, nil
			}
			return nil, err
		}

		rec := RunRecord{
			Timestamp: rh.Timestamp,
			Seed:      rh.Seed,
			Room:      int(rh.Room),
			Banked:    int(rh.Banked),
			Fragments: int(rh.Fragments),
			Outcome:   rh.Outcome,
		}

		nameBuf := make([]byte, rh.NameLen)
		if _, err := io.ReadFull(r, nameBuf); err != nil {
			return nil, err
		}
		rec.Username = string(nameBuf)

		records = append(records, rec)
	}
}
