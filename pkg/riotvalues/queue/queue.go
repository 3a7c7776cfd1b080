package queuevalues

// Queue type of the solo/duo ranked ladder on the league entries.
const RankedSoloQueueType = "RANKED_SOLO_5x5"

// Queues accepted on the match list when classifying roles and building the history.
var HistoryQueues = []int{400, 410, 420, 430, 440}

// Readable names for the history queues.
var queueNames = map[int]string{
	400: "Normal Draft",
	410: "Ranked Dynamic",
	420: "Ranked Solo",
	430: "Blind Pick",
	440: "Ranked Flex",
}

// QueueName returns the display name of a queue id.
func QueueName(id int) string {
	if name, ok := queueNames[id]; ok {
		return name
	}
	return "Unknown"
}
