package qcontacts

import (
	"github.com/tikz/qcontacts/pdb"
)

// Contact type codes emitted by QContacts in the by-atom file.
const (
	TypeVanDerWaals  = "V"
	TypeHydrogenBond = "H"
	TypeSaltBridge   = "S"
	TypeIonPair      = "I"
)

// ContactAtom describes one side of an atom-level contact.
type ContactAtom struct {
	AtomNumber    int64  `json:"atomNumber"`
	AtomName      string `json:"atomName"`
	Residue       string `json:"residue"`
	ResidueNumber int64  `json:"residueNumber"`
}

// AtomContact represents a single line of the by-atom output file.
// Angle, Rno, DGhb and DGip are only populated for the contact types
// whose column table includes them, and are zero otherwise.
type AtomContact struct {
	Type  string      `json:"type"`
	Atom1 ContactAtom `json:"atom1"`
	Atom2 ContactAtom `json:"atom2"`

	Area  float64 `json:"area"`
	Angle float64 `json:"angle,omitempty"` // donor-hydrogen-acceptor angle, H and S types
	Rno   float64 `json:"rno,omitempty"`   // nitrogen-oxygen distance, H, I and S types
	DGhb  float64 `json:"dGhb,omitempty"`  // hydrogen bond free energy, S type
	DGip  float64 `json:"dGip,omitempty"`  // ion pair free energy, S type
}

// ContactResidue describes one side of a residue-level contact.
type ContactResidue struct {
	ResidueNumber int64  `json:"residueNumber"`
	Residue       string `json:"residue"`
}

// ResidueContact represents a single line of the by-res output file:
// two residues and their summed contact area.
type ResidueContact struct {
	Residue1 ContactResidue `json:"residue1"`
	Residue2 ContactResidue `json:"residue2"`
	Area     float64        `json:"area"`
}

// extraColumn maps one type-dependent column of a by-atom line to the
// record field it fills.
type extraColumn struct {
	index  int
	assign func(*AtomContact, float64)
}

func setArea(c *AtomContact, v float64)  { c.Area = v }
func setAngle(c *AtomContact, v float64) { c.Angle = v }
func setRno(c *AtomContact, v float64)   { c.Rno = v }
func setDGhb(c *AtomContact, v float64)  { c.DGhb = v }
func setDGip(c *AtomContact, v float64)  { c.DGip = v }

// extraColumns lists, per contact type, which trailing columns of a
// by-atom line apply and where they go. Column 13 is the contact area
// for every known type.
var extraColumns = map[string][]extraColumn{
	TypeVanDerWaals: {
		{13, setArea},
	},
	TypeHydrogenBond: {
		{13, setArea},
		{14, setAngle},
		{15, setRno},
	},
	TypeIonPair: {
		{13, setArea},
		{14, setRno},
	},
	TypeSaltBridge: {
		{13, setArea},
		{15, setDGhb},
		{17, setDGip},
		{18, setAngle},
		{19, setRno},
	},
}

// ContactsOfType returns the atom contacts with the given type code.
func (r *Results) ContactsOfType(code string) []AtomContact {
	var contacts []AtomContact
	for _, c := range r.AtomContacts {
		if c.Type == code {
			contacts = append(contacts, c)
		}
	}
	return contacts
}

// InterfaceArea returns the total interface area as the sum of all
// residue-level contact areas.
func (r *Results) InterfaceArea() float64 {
	var area float64
	for _, c := range r.ResidueContacts {
		area += c.Area
	}
	return area
}

// MapResidues maps residue-level contacts back onto a parsed
// structure, given the two chains the run was filtered to. Contacts
// whose positions are not present in the structure are skipped.
func MapResidues(p *pdb.PDB, contacts []ResidueContact, chain1 string, chain2 string) map[*pdb.Residue][]*pdb.Residue {
	interacts := make(map[*pdb.Residue][]*pdb.Residue)
	for _, c := range contacts {
		res1, ok1 := p.Chains[chain1][c.Residue1.ResidueNumber]
		res2, ok2 := p.Chains[chain2][c.Residue2.ResidueNumber]
		if ok1 && ok2 {
			interacts[res1] = append(interacts[res1], res2)
			interacts[res2] = append(interacts[res2], res1)
		}
	}
	return interacts
}
