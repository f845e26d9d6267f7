package engine

// DefaultEntries returns the reference résumé dataset. The list is built
// fresh on each call so callers can never mutate the package's copy.
func DefaultEntries() []Entry {
	return []Entry{
		{
			Category:     CategoryWork,
			Title:        "Senior Software Engineer",
			Organization: "Datawatt",
			Location:     "Lyon, France",
			StartYear:    2022,
			EndYear:      2025,
			Details: []string{
				"Designed the ingestion pipeline for smart-meter telemetry (1.2M readings/day)",
				"Led migration of four services from bare VMs to Kubernetes",
				"Mentored two junior engineers through their first production releases",
			},
		},
		{
			Category:     CategoryWork,
			Title:        "Software Engineer",
			Organization: "Hexalab",
			Location:     "Grenoble, France",
			StartYear:    2019,
			EndYear:      2022,
			Details: []string{
				"Built the customer-facing reporting API in Go",
				"Cut P99 latency of the search endpoint from 900ms to 120ms",
			},
		},
		{
			Category:     CategoryEducation,
			Title:        "MSc Computer Science",
			Organization: "INSA Lyon",
			Location:     "Lyon, France",
			StartYear:    2017,
			EndYear:      2019,
			Details: []string{
				"Specialization in distributed systems",
				"Thesis: gossip-based membership under churn",
			},
		},
		{
			Category:     CategoryWork,
			Title:        "Backend Developer (intern)",
			Organization: "Ville de Lyon",
			Location:     "Lyon, France",
			StartYear:    2018,
			EndYear:      2018,
			Details: []string{
				"Prototyped an open-data portal for public transit feeds",
			},
		},
		{
			Category:     CategoryEducation,
			Title:        "BSc Computer Science",
			Organization: "Université Grenoble Alpes",
			Location:     "Grenoble, France",
			StartYear:    2014,
			EndYear:      2017,
			Details: []string{
				"Graduated with honours",
				"Teaching assistant for the C programming course",
			},
		},
		{
			Category:     CategoryWork,
			Title:        "Freelance Web Developer",
			Organization: "Self-employed",
			Location:     "Remote",
			StartYear:    2015,
			EndYear:      2017,
			Details: []string{
				"Delivered a dozen small-business sites and booking tools",
				"Maintained a shared hosting setup for long-term clients",
			},
		},
		{
			Category:     CategoryEducation,
			Title:        "Exchange Semester",
			Organization: "KTH Royal Institute of Technology",
			Location:     "Stockholm, Sweden",
			StartYear:    2016,
			EndYear:      2016,
			Details: []string{
				"Coursework in concurrent programming and HCI",
			},
		},
		{
			Category:     CategoryWork,
			Title:        "IT Support Technician",
			Organization: "Lycée Champollion",
			Location:     "Grenoble, France",
			StartYear:    2013,
			EndYear:      2014,
			Details: []string{
				"Kept 200 lab machines imaged and patched",
				"Wrote the scripts that finally automated it",
			},
		},
		{
			Category:     CategoryEducation,
			Title:        "Baccalauréat Scientifique",
			Organization: "Lycée Champollion",
			Location:     "Grenoble, France",
			StartYear:    2010,
			EndYear:      2013,
			Details: []string{
				"Mention bien",
			},
		},
	}
}

// DatasetBounds computes the min/max year over all start and end years.
// ok is false for an empty dataset, in which case the caller picks its own
// default range (the filter logic itself never uses bounds).
func DatasetBounds(entries []Entry) (Bounds, bool) {
	if len(entries) == 0 {
		return Bounds{}, false
	}

	b := Bounds{Min: entries[0].StartYear, Max: entries[0].EndYear}
	for _, e := range entries {
		if e.StartYear < b.Min {
			b.Min = e.StartYear
		}
		if e.EndYear < b.Min {
			b.Min = e.EndYear
		}
		if e.StartYear > b.Max {
			b.Max = e.StartYear
		}
		if e.EndYear > b.Max {
			b.Max = e.EndYear
		}
	}
	return b, true
}

// DefaultFilter returns the reset state: both categories included and the
// year range spanning the whole dataset.
func DefaultFilter(entries []Entry) FilterState {
	b, _ := DatasetBounds(entries)
	return FilterState{
		IncludeWork:      true,
		IncludeEducation: true,
		FromYear:         b.Min,
		ToYear:           b.Max,
	}
}
