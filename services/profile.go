package services

import (
	"strconv"
	"time"

	"github.com/mrnavastar/magma/util"
)

const ProfileName = "Magma"

// Apply records the pair as the last used version and modloader.
func (s Selection) Apply(settings *util.Settings) {
	settings.LastVersion = s.Version
	settings.LastModloader = string(s.Modloader)
}

// Profile builds the launcher_profiles.json entry for the selection.
func (s Selection) Profile(now time.Time, memoryMax int) util.Profile {
	stamp := now.Format(time.RFC3339)
	profile := util.Profile{
		Name:          ProfileName,
		Type:          "custom",
		Icon:          "Crafting_Table",
		LastVersionId: s.Version,
		Created:       stamp,
		LastUsed:      stamp,
	}
	if memoryMax > 0 {
		profile.JavaArgs = "-Xmx" + strconv.Itoa(memoryMax) + "M -XX:+UnlockExperimentalVMOptions -XX:+UseG1GC -XX:G1NewSizePercent=20 -XX:G1ReservePercent=20 -XX:MaxGCPauseMillis=50 -XX:G1HeapRegionSize=32M"
	}
	return profile
}
