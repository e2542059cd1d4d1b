package database

import (
	"log"

	"github.com/pienas/amongus/internal/models"

	"gorm.io/gorm"
)

// SeedTasks loads the task catalogue on first boot. Each entry matches a
// physical station with the same code printed on it, so the catalogue is
// only written when the table is empty.
func SeedTasks(db *gorm.DB) {
	var count int64
	db.Model(&models.TaskDefinition{}).Count(&count)
	if count > 0 {
		return
	}

	if err := db.Create(&taskCatalogue).Error; err != nil {
		log.Fatalf("failed to seed task catalogue: %v", err)
	}
	log.Printf("task catalogue seeded (%d tasks)", len(taskCatalogue))
}

var taskCatalogue = []models.TaskDefinition{
	{Tier: models.TierEasy, TaskID: 1, Description: "Wipe down the mirror in the east hallway", Code: 318422},
	{Tier: models.TierEasy, TaskID: 2, Description: "Water the plant by the main entrance", Code: 905137},
	{Tier: models.TierEasy, TaskID: 3, Description: "Stack ten chairs in the dining hall", Code: 247860},
	{Tier: models.TierEasy, TaskID: 4, Description: "Sort the deck of cards at the game table", Code: 531294},
	{Tier: models.TierEasy, TaskID: 5, Description: "Sharpen three pencils at the reception desk", Code: 780415},
	{Tier: models.TierEasy, TaskID: 6, Description: "Fold five towels in the laundry room", Code: 164938},
	{Tier: models.TierEasy, TaskID: 7, Description: "Line up the shoes on the front porch rack", Code: 429571},
	{Tier: models.TierEasy, TaskID: 8, Description: "Refill the water jug in the kitchen", Code: 683204},
	{Tier: models.TierEasy, TaskID: 9, Description: "Match ten pairs of socks in the laundry basket", Code: 852617},
	{Tier: models.TierEasy, TaskID: 10, Description: "Close all the windows on the second floor", Code: 396082},
	{Tier: models.TierEasy, TaskID: 11, Description: "Collect five pine cones from the yard", Code: 571349},
	{Tier: models.TierEasy, TaskID: 12, Description: "Arrange the books on the lounge shelf by size", Code: 908263},
	{Tier: models.TierEasy, TaskID: 13, Description: "Empty the small trash bin in the office", Code: 214756},
	{Tier: models.TierEasy, TaskID: 14, Description: "Set the table for four in the dining hall", Code: 647091},
	{Tier: models.TierEasy, TaskID: 15, Description: "Roll up the yoga mats in the activity room", Code: 385920},
	{Tier: models.TierEasy, TaskID: 16, Description: "Untangle the jump rope by the sports shed", Code: 750268},
	{Tier: models.TierEasy, TaskID: 17, Description: "Hang five clothespins on the drying line", Code: 123845},
	{Tier: models.TierEasy, TaskID: 18, Description: "Put the board game pieces back in their box", Code: 569037},
	{Tier: models.TierEasy, TaskID: 19, Description: "Sweep the front steps", Code: 894512},
	{Tier: models.TierEasy, TaskID: 20, Description: "Stack the firewood by the fireplace", Code: 432760},
	{Tier: models.TierEasy, TaskID: 21, Description: "Sort the cutlery drawer in the kitchen", Code: 671893},
	{Tier: models.TierEasy, TaskID: 22, Description: "Blow up one balloon and leave it in the hall", Code: 205974},
	{Tier: models.TierEasy, TaskID: 23, Description: "Straighten the picture frames in the corridor", Code: 948326},
	{Tier: models.TierEasy, TaskID: 24, Description: "Fill the bird feeder in the garden", Code: 316408},
	{Tier: models.TierMedium, TaskID: 1, Description: "Solve the jigsaw corner at the puzzle table", Code: 487210},
	{Tier: models.TierMedium, TaskID: 2, Description: "Carry a full bucket across the yard without spilling", Code: 932654},
	{Tier: models.TierMedium, TaskID: 3, Description: "Build a ten-piece card tower in the lounge", Code: 158736},
	{Tier: models.TierMedium, TaskID: 4, Description: "Copy the rune sequence posted in the basement", Code: 620493},
	{Tier: models.TierMedium, TaskID: 5, Description: "Score three basketball free throws", Code: 874315},
	{Tier: models.TierMedium, TaskID: 6, Description: "Assemble the tent poles by the sports shed", Code: 341287},
	{Tier: models.TierMedium, TaskID: 7, Description: "Transcribe the morse message at the radio desk", Code: 596028},
	{Tier: models.TierMedium, TaskID: 8, Description: "Sort the recycling into all four bins", Code: 763941},
	{Tier: models.TierMedium, TaskID: 9, Description: "Thread five beads onto the cord at the craft table", Code: 289164},
	{Tier: models.TierMedium, TaskID: 10, Description: "Measure the corridor with the folding ruler", Code: 415609},
	{Tier: models.TierMedium, TaskID: 11, Description: "Tie three different knots at the rope station", Code: 637528},
	{Tier: models.TierMedium, TaskID: 12, Description: "Stack the cups into a pyramid and back", Code: 950872},
	{Tier: models.TierMedium, TaskID: 13, Description: "Plant a seedling in the greenhouse tray", Code: 182396},
	{Tier: models.TierMedium, TaskID: 14, Description: "Wind the wool into a ball at the craft table", Code: 528741},
	{Tier: models.TierMedium, TaskID: 15, Description: "Balance the scale with the weight set", Code: 806159},
	{Tier: models.TierMedium, TaskID: 16, Description: "Complete the memory card pairs game", Code: 379420},
	{Tier: models.TierHard, TaskID: 1, Description: "Crack the combination lock at the storage door", Code: 614835},
	{Tier: models.TierHard, TaskID: 2, Description: "Complete the blindfolded obstacle line", Code: 270981},
	{Tier: models.TierHard, TaskID: 3, Description: "Assemble the model ship at the workshop bench", Code: 853647},
	{Tier: models.TierHard, TaskID: 4, Description: "Decode the cipher wheel message in the attic", Code: 491230},
	{Tier: models.TierHard, TaskID: 5, Description: "Finish the wiring panel in the boiler room", Code: 736514},
	{Tier: models.TierHard, TaskID: 6, Description: "Climb the rope wall and ring the bell", Code: 102869},
	{Tier: models.TierHard, TaskID: 7, Description: "Solve the chess puzzle at the library desk", Code: 965743},
	{Tier: models.TierHard, TaskID: 8, Description: "Filter the sand jar until the marble is found", Code: 348052},
}
