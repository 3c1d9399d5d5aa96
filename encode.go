package marina

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ParseBoat parses a boat record:
//
//	<name>,<length>,<placement>,<extra>,<amountOwed>
//
// The placement name is case-insensitive and unrecognized ones are Unknown.
// The extra column is read according to the placement, and ignored for Unknown.
func ParseBoat(record string) (*Boat, error) {
	fields := strings.Split(record, ",")
	if len(fields) != 5 {
		return nil, fmt.Errorf("expected 5 fields, got %d", len(fields))
	}
	name, length, place, extra, owed := fields[0], fields[1], fields[2], fields[3], fields[4]

	if name == "" {
		return nil, errors.New("missing boat name")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return nil, fmt.Errorf("boat name longer than %d characters", MaxNameLength)
	}
	b := &Boat{Name: name}

	var err error
	if b.Length, err = strconv.Atoi(strings.TrimSpace(length)); err != nil {
		return nil, fmt.Errorf("invalid length %q", length)
	}
	if b.Location, err = parseLocation(ParsePlacement(strings.TrimSpace(place)), extra); err != nil {
		return nil, err
	}
	if b.Owed, err = ParseMoney(owed); err != nil {
		return nil, err
	}
	return b, nil
}

func parseLocation(p Placement, extra string) (Location, error) {
	switch p {
	case Slip:
		n, err := strconv.Atoi(strings.TrimSpace(extra))
		if err != nil {
			return nil, fmt.Errorf("invalid slip number %q", extra)
		}
		return SlipNumber(n), nil
	case Land:
		r, size := utf8.DecodeRuneInString(extra)
		if size == 0 {
			return nil, errors.New("missing bay letter")
		}
		if r == utf8.RuneError && size == 1 {
			return nil, fmt.Errorf("invalid bay letter %q", extra)
		}
		return LandBay(r), nil
	case Trailer:
		if utf8.RuneCountInString(extra) > MaxLicenseLength {
			extra = string([]rune(extra)[:MaxLicenseLength])
		}
		return TrailerLicense(extra), nil
	case Storage:
		n, err := strconv.Atoi(strings.TrimSpace(extra))
		if err != nil {
			return nil, fmt.Errorf("invalid storage slot %q", extra)
		}
		return StorageSlot(n), nil
	default:
		return nil, nil
	}
}

// FormatBoat returns the record of boat 'b', as accepted by ParseBoat.
func FormatBoat(b *Boat) string {
	return strings.Join([]string{
		b.Name,
		strconv.Itoa(b.Length),
		b.Placement().String(),
		b.Detail(),
		b.Owed.Fixed(),
	}, ",")
}

// DecodeBoats reads boat records, one per line, into a new sorted Registry.
//
// Invalid records are skipped and passed to 'report' (if not nil), as well
// as the records beyond Capacity. The returned error is only about reading 'r'.
func DecodeBoats(r io.Reader, report func(*RecordError)) (*Registry, error) {
	if report == nil {
		report = func(*RecordError) {}
	}
	reg := NewRegistry()
	// Lines have no length limit: an over long line is an invalid record.
	br := bufio.NewReader(r)
	line := 0
	for {
		text, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("cannot read boats: %w", err)
		}
		if text == "" && err == io.EOF {
			break
		}
		line++
		text = strings.TrimRight(text, "\r\n")
		if text != "" {
			reg.decodeLine(line, text, report)
		}
		if err == io.EOF {
			break
		}
	}
	reg.Sort()
	return reg, nil
}

// decodeLine appends the boat of a single line, or reports why it cannot.
func (reg *Registry) decodeLine(line int, text string, report func(*RecordError)) {
	if len(reg.boats) >= Capacity {
		report(&RecordError{Line: line, Record: text, Err: ErrCapacity})
		return
	}
	b, err := ParseBoat(text)
	if err != nil {
		report(&RecordError{Line: line, Record: text, Err: err})
		return
	}
	// file order is not trusted, sort once at the end.
	reg.boats = append(reg.boats, b)
}

// EncodeBoats writes all boats of 'reg', one record per line, in registry order.
func EncodeBoats(w io.Writer, reg *Registry) error {
	bw := bufio.NewWriter(w)
	for _, b := range reg.boats {
		if _, err := fmt.Fprintln(bw, FormatBoat(b)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// LoadFile decodes the registry stored in file 'name'.
func LoadFile(name string, report func(*RecordError)) (*Registry, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("cannot open boats file: %w", err)
	}
	defer f.Close()
	return DecodeBoats(f, report)
}

// SaveFile replaces the content of file 'name' with the registry.
func SaveFile(name string, reg *Registry) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("cannot open boats file for writing: %w", err)
	}
	if err := EncodeBoats(f, reg); err != nil {
		f.Close()
		return fmt.Errorf("cannot write boats file %q: %w", name, err)
	}
	return f.Close()
}
