package world

// Phoenix returns the built-in USS Phoenix definition: 16 ship compartments
// with consistent bidirectional exits and the full equipment catalog.
func Phoenix() Definition {
	return Definition{
		StartRoom:    "command_center",
		StarterItems: []string{"flashlight", "emergency_scanner"},
		PreUnlocked:  []string{"command_center", "main_corridor", "bridge"},
		WinItem:      "ai_activation_key",
		WinComponent: "ai_matrix_components",
		ScannerItem:  "emergency_scanner",
		IntroMessage: "=== EMERGENCY PROTOCOL ACTIVATED ===\n\n" +
			"You are Commander Alex Chen aboard the USS Phoenix research vessel.\n\n" +
			"ALL SHIP SYSTEMS HAVE FAILED. The central AI has suffered a catastrophic malfunction, " +
			"leaving you stranded with failing life support.\n\n" +
			"CRITICAL: Life support failing - find and reboot the AI Core!\n" +
			"Type 'guide' to open the operations manual.",
		VictoryMessage: "MISSION COMPLETE!\n\n" +
			"You insert the AI Activation Key and upload the matrix components. The AI Core hums to life!\n\n" +
			"'Systems coming online... Thank you, Commander. Ship operations restored.'\n\n" +
			"Life support: RESTORED\nPower systems: ONLINE\nNavigation: FUNCTIONAL\nCommunications: ACTIVE\n\n" +
			"You've saved the USS Phoenix and her crew!",
		Rooms: map[string]Room{
			"command_center": {
				Key:         "command_center",
				Name:        "Command Center",
				Description: "Emergency lighting casts an eerie red glow. Multiple system failure alerts flash on darkened screens.",
				Exits:       map[string]string{"north": "bridge", "south": "main_corridor"},
				Items:       []string{"emergency_codes"},
			},
			"bridge": {
				Key:         "bridge",
				Name:        "Bridge",
				Description: "The captain's bridge is in chaos. Navigation systems are offline, viewscreen shows static.",
				Exits:       map[string]string{"south": "command_center", "east": "navigation", "west": "communications"},
				Items:       []string{"bridge_key", "captain_logs"},
			},
			"navigation": {
				Key:            "navigation",
				Name:           "Navigation",
				Description:    "Star charts flicker weakly. Quantum compass spinning wildly without AI guidance.",
				Exits:          map[string]string{"west": "bridge"},
				Items:          []string{"nav_codes", "stellar_maps"},
				Locked:         true,
				UnlockRequires: []string{"bridge_key"},
			},
			"communications": {
				Key:            "communications",
				Name:           "Communications",
				Description:    "All external communications down. Distress beacon offline.",
				Exits:          map[string]string{"east": "bridge"},
				Items:          []string{"comm_relay", "distress_codes"},
				Locked:         true,
				UnlockRequires: []string{"nav_codes"},
			},
			"main_corridor": {
				Key:         "main_corridor",
				Name:        "Main Corridor",
				Description: "The main artery of the ship. Flickering emergency lights barely illuminate the way.",
				Exits:       map[string]string{"north": "command_center", "west": "engineering", "east": "security", "south": "life_support"},
				Items:       []string{"repair_kit"},
			},
			"engineering": {
				Key:            "engineering",
				Name:           "Engineering Bay",
				Description:    "Massive machinery stands silent. Fusion reactor controls locked behind safety protocols.",
				Exits:          map[string]string{"east": "main_corridor", "south": "power_core"},
				Items:          []string{"power_cell", "engineering_tools"},
				Locked:         true,
				UnlockRequires: []string{"emergency_codes"},
			},
			"power_core": {
				Key:            "power_core",
				Name:           "Power Core",
				Description:    "The ship's central power reactor. Radiation warnings flash, core in shutdown mode.",
				Exits:          map[string]string{"north": "engineering"},
				Items:          []string{"fusion_key", "radiation_suit"},
				Locked:         true,
				UnlockRequires: []string{"power_cell"},
			},
			"security": {
				Key:            "security",
				Name:           "Security Office",
				Description:    "High-security monitoring station. Multiple screens show various ship areas.",
				Exits:          map[string]string{"west": "main_corridor", "south": "armory"},
				Items:          []string{"security_codes", "surveillance_data"},
				Locked:         true,
				UnlockRequires: []string{"emergency_codes"},
			},
			"armory": {
				Key:            "armory",
				Name:           "Armory",
				Description:    "Weapon storage with plasma rifle mounts. Most weapons locked behind barriers.",
				Exits:          map[string]string{"north": "security"},
				Items:          []string{"plasma_rifle", "armor_vest", "ammo_clip"},
				Locked:         true,
				UnlockRequires: []string{"security_codes"},
			},
			"life_support": {
				Key:            "life_support",
				Name:           "Life Support",
				Description:    "Atmospheric processors struggle to maintain breathable air. Oxygen dropping steadily.",
				Exits:          map[string]string{"north": "main_corridor", "west": "medical_bay", "east": "laboratory"},
				Items:          []string{"env_codes", "air_filter"},
				Locked:         true,
				UnlockRequires: []string{"engineering_tools"},
			},
			"medical_bay": {
				Key:            "medical_bay",
				Name:           "Medical Bay",
				Description:    "Advanced medical facility with bio-regeneration pods and surgical arrays.",
				Exits:          map[string]string{"east": "life_support"},
				Items:          []string{"medkit", "bio_scanner", "stim_pack"},
				Locked:         true,
				UnlockRequires: []string{"env_codes"},
			},
			"laboratory": {
				Key:            "laboratory",
				Name:           "Laboratory",
				Description:    "Research equipment hums with backup power. Where you can synthesize the AI repair matrix.",
				Exits:          map[string]string{"west": "life_support", "south": "fabrication"},
				Items:          []string{"research_pass", "ai_matrix_components"},
				Locked:         true,
				UnlockRequires: []string{"fusion_key"},
			},
			"fabrication": {
				Key:            "fabrication",
				Name:           "Fabrication Lab",
				Description:    "Automated manufacturing facility with 3D molecular printers and raw material processors.",
				Exits:          map[string]string{"north": "laboratory", "west": "cargo_bay"},
				Items:          []string{"fabricator", "raw_materials", "blueprint_scanner"},
				Locked:         true,
				UnlockRequires: []string{"research_pass"},
			},
			"cargo_bay": {
				Key:         "cargo_bay",
				Name:        "Cargo Bay",
				Description: "Massive storage area with floating containers. Emergency supplies scattered after evacuation.",
				Exits:       map[string]string{"east": "fabrication", "south": "detention"},
				Items:       []string{"supply_crate", "gravity_boots", "emergency_beacon"},
			},
			"detention": {
				Key:            "detention",
				Name:           "Detention Block",
				Description:    "Ship's security detention area. Emergency lockdown protocols have sealed most cells.",
				Exits:          map[string]string{"north": "cargo_bay", "east": "ai_core"},
				Items:          []string{"security_key", "prisoner_log"},
				Locked:         true,
				UnlockRequires: []string{"security_codes"},
			},
			"ai_core": {
				Key:            "ai_core",
				Name:           "AI Core",
				Description:    "Central AI housing. Massive quantum processors stand silent. Restore the ship's intelligence here.",
				Exits:          map[string]string{"west": "detention"},
				Items:          []string{"ai_activation_key"},
				Locked:         true,
				UnlockRequires: []string{"env_codes", "research_pass"},
				FinalObjective: true,
			},
		},
		Items: map[string]Item{
			"flashlight":           {Key: "flashlight", Name: "Emergency Flashlight", Description: "Provides light in dark areas", Value: 25},
			"emergency_scanner":    {Key: "emergency_scanner", Name: "Emergency Scanner", Description: "Detects system failures and hazards", Value: 50},
			"emergency_codes":      {Key: "emergency_codes", Name: "Emergency Codes", Description: "Access codes for critical systems", Value: 100},
			"bridge_key":           {Key: "bridge_key", Name: "Bridge Access Key", Description: "Unlocks navigation and other bridge systems", Value: 200},
			"captain_logs":         {Key: "captain_logs", Name: "Captain's Logs", Description: "Personal logs from the captain", Value: 150},
			"nav_codes":            {Key: "nav_codes", Name: "Navigation Codes", Description: "Quantum navigation access codes", Value: 300},
			"stellar_maps":         {Key: "stellar_maps", Name: "Stellar Maps", Description: "Current sector navigation data", Value: 250},
			"comm_relay":           {Key: "comm_relay", Name: "Comm Relay", Description: "Backup communication device", Value: 400},
			"distress_codes":       {Key: "distress_codes", Name: "Distress Codes", Description: "Emergency broadcast authorization codes", Value: 250},
			"repair_kit":           {Key: "repair_kit", Name: "Engineering Repair Kit", Description: "Tools for fixing ship systems", Value: 350},
			"power_cell":           {Key: "power_cell", Name: "Power Cell", Description: "Portable energy storage unit", Value: 500},
			"engineering_tools":    {Key: "engineering_tools", Name: "Engineering Tools", Description: "Specialized repair equipment", Value: 450},
			"fusion_key":           {Key: "fusion_key", Name: "Fusion Access Key", Description: "Activates fusion reactor controls", Value: 800},
			"radiation_suit":       {Key: "radiation_suit", Name: "Radiation Suit", Description: "Protection from reactor radiation", Value: 600},
			"security_codes":       {Key: "security_codes", Name: "Security Codes", Description: "Security access codes for ship systems", Value: 500},
			"surveillance_data":    {Key: "surveillance_data", Name: "Surveillance Data", Description: "Security camera footage and monitoring data", Value: 200},
			"plasma_rifle":         {Key: "plasma_rifle", Name: "Plasma Rifle", Description: "High-energy plasma weapon", Value: 500},
			"armor_vest":           {Key: "armor_vest", Name: "Combat Armor", Description: "Military-grade body armor", Value: 300},
			"ammo_clip":            {Key: "ammo_clip", Name: "Ammo Clip", Description: "High-capacity ammunition", Value: 100},
			"env_codes":            {Key: "env_codes", Name: "Environmental Codes", Description: "Life support system access", Value: 700},
			"air_filter":           {Key: "air_filter", Name: "Air Filter", Description: "Emergency atmospheric processor", Value: 300},
			"medkit":               {Key: "medkit", Name: "Advanced Medkit", Description: "Sophisticated medical kit", Value: 200},
			"bio_scanner":          {Key: "bio_scanner", Name: "Bio-Scanner", Description: "Advanced medical scanning device", Value: 350},
			"stim_pack":            {Key: "stim_pack", Name: "Stim Pack", Description: "Emergency medical stimulant", Value: 100},
			"research_pass":        {Key: "research_pass", Name: "Research Clearance", Description: "Access to laboratory systems", Value: 750},
			"ai_matrix_components": {Key: "ai_matrix_components", Name: "AI Matrix Components", Description: "Essential for AI reconstruction", Value: 1000},
			"fabricator":           {Key: "fabricator", Name: "Molecular Fabricator", Description: "Advanced 3D molecular printing device", Value: 800},
			"raw_materials":        {Key: "raw_materials", Name: "Raw Materials", Description: "Assorted crafting materials", Value: 75},
			"blueprint_scanner":    {Key: "blueprint_scanner", Name: "Blueprint Scanner", Description: "Scans and stores item blueprints", Value: 400},
			"supply_crate":         {Key: "supply_crate", Name: "Supply Crate", Description: "Military supply crate with various items", Value: 200},
			"gravity_boots":        {Key: "gravity_boots", Name: "Anti-Grav Boots", Description: "Magnetic boots for wall walking", Value: 250},
			"emergency_beacon":     {Key: "emergency_beacon", Name: "Emergency Beacon", Description: "Distress beacon for emergency communications", Value: 150},
			"security_key":         {Key: "security_key", Name: "Security Key", Description: "Master security override key", Value: 300},
			"prisoner_log":         {Key: "prisoner_log", Name: "Prisoner Log", Description: "Log files from detention facilities", Value: 100},
			"ai_activation_key":    {Key: "ai_activation_key", Name: "AI Activation Key", Description: "Final component for AI reboot", Value: 2000},
		},
	}
}
