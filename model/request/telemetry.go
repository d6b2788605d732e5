package request

// AllGameData 本地客户端 liveclientdata/allgamedata 响应中用到的字段
// 指针字段用于区分缺失和零值
type AllGameData struct {
	ActivePlayer *ActivePlayer `json:"activePlayer"`
	AllPlayers   []Player      `json:"allPlayers"`
}

// ActivePlayer 当前召唤师
type ActivePlayer struct {
	Level  *int   `json:"level"`
	RiotID string `json:"riotId"`
}

// Player 对局中的玩家
type Player struct {
	RiotID string  `json:"riotId"`
	Scores *Scores `json:"scores"`
}

// Scores 玩家战绩
type Scores struct {
	Deaths *int `json:"deaths"`
}
