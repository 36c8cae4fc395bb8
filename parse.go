package qcontacts

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

func toFloat(str string) float64 {
	f, _ := strconv.ParseFloat(str, 64)
	return f
}

func toInt(str string) int64 {
	n, _ := strconv.ParseInt(str, 10, 64)
	return n
}

// parseAtomFile parses a QContacts -by-atom.vor file.
//
// Each non-empty line is whitespace-split into columns: column 1 is
// the contact type code, columns 2-3 and 5-6 describe the first atom,
// columns 8-9 and 11-12 the second, and the remaining columns depend
// on the type code per the extraColumns table.
func parseAtomFile(path string) ([]AtomContact, error) {
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, &OutputFileMissingError{Path: path}
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var contacts []AtomContact

	n := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		n++
		line := scanner.Text()
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 13 {
			return nil, &MalformedLineError{Path: path, N: n, Line: line}
		}

		contact := AtomContact{
			Type: fields[1],
			Atom1: ContactAtom{
				ResidueNumber: toInt(fields[2]),
				Residue:       fields[3],
				AtomNumber:    toInt(fields[5]),
				AtomName:      fields[6],
			},
			Atom2: ContactAtom{
				ResidueNumber: toInt(fields[8]),
				Residue:       fields[9],
				AtomNumber:    toInt(fields[11]),
				AtomName:      fields[12],
			},
		}

		columns, ok := extraColumns[contact.Type]
		if !ok {
			return nil, &UnknownContactTypeError{Path: path, N: n, Type: contact.Type}
		}
		for _, col := range columns {
			if col.index >= len(fields) {
				return nil, &MalformedLineError{Path: path, N: n, Line: line}
			}
			col.assign(&contact, toFloat(strings.TrimSuffix(fields[col.index], ")")))
		}

		contacts = append(contacts, contact)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return contacts, nil
}

// parseResidueFile parses a QContacts -by-res.vor file: columns 1-2
// and 5-6 are the two residues, column 9 the summed contact area.
func parseResidueFile(path string) ([]ResidueContact, error) {
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, &OutputFileMissingError{Path: path}
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var contacts []ResidueContact

	n := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		n++
		line := scanner.Text()
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 10 {
			return nil, &MalformedLineError{Path: path, N: n, Line: line}
		}

		contacts = append(contacts, ResidueContact{
			Residue1: ContactResidue{
				ResidueNumber: toInt(fields[1]),
				Residue:       fields[2],
			},
			Residue2: ContactResidue{
				ResidueNumber: toInt(fields[5]),
				Residue:       fields[6],
			},
			Area: toFloat(fields[9]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return contacts, nil
}
