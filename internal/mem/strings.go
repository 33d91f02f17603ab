package mem

import "sort"

// DefaultStringsPageSize provides a default for Strings.PageSize.
const DefaultStringsPageSize = 64

// Strings implements a sparse, string-valued paged memory addressed by signed
// integer indices. The empty string marks an unset cell: loading one yields
// "", and storing "" clears it.
type Strings struct {
	PagedCore
	pages [][]string
	count int
}

// Len returns the number of set cells.
func (m *Strings) Len() int { return m.count }

// Load returns the value stored at index, or "" if nothing is.
// Returns an error if index exceeds any Limit.
func (m *Strings) Load(index int) (string, error) {
	if err := m.checkLimit(index, "load"); err != nil {
		return "", err
	}
	if len(m.pages) == 0 {
		return "", nil
	}

	addr := addrOf(index)
	pageID := m.findPage(addr)
	base := m.bases[pageID]
	page := m.pages[pageID]
	if i := int(addr) - int(base); 0 <= i && i < len(page) {
		return page[i], nil
	}
	return "", nil
}

// Stor stores value at index, allocating a page if necessary, and replacing
// any prior value. Returns an error if index exceeds any Limit.
func (m *Strings) Stor(index int, value string) error {
	if err := m.checkLimit(index, "stor"); err != nil {
		return err
	}

	if m.PageSize == 0 {
		m.PageSize = DefaultStringsPageSize
	}

	if value == "" {
		if prior, _ := m.Load(index); prior == "" {
			return nil // nothing to clear, and no page to allocate
		}
	}

	addr := addrOf(index)
	for pageID := m.findPage(addr); ; pageID++ {
		base, size, page := m.allocPage(pageID, addr)
		if addr < base || addr-base >= size {
			continue
		}
		i := addr - base
		if prior := page[i]; prior == "" && value != "" {
			m.count++
		} else if prior != "" && value == "" {
			m.count--
		}
		page[i] = value
		return nil
	}
}

// Indices returns every set index in ascending order.
func (m *Strings) Indices() []int {
	indices := make([]int, 0, m.count)
	for pageID, page := range m.pages {
		base := m.bases[pageID]
		for i, value := range page {
			if value != "" {
				indices = append(indices, indexOf(base+uint(i)))
			}
		}
	}
	sort.Ints(indices)
	return indices
}

func (m *Strings) allocPage(pageID int, addr uint) (base, size uint, page []string) {
	base, size, isNew := m.PagedCore.allocPage(pageID, addr)
	if isNew {
		page = make([]string, size)
		if pageID == len(m.pages) {
			m.pages = append(m.pages, page)
		} else {
			m.pages = append(m.pages, nil)
			copy(m.pages[pageID+1:], m.pages[pageID:])
			m.pages[pageID] = page
		}
	} else {
		page = m.pages[pageID]
	}
	return base, size, page
}
