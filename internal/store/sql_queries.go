package store

// Statements for the account provisioning transaction. Schema and column
// names mirror the live game database: d_taiwan holds accounts and member
// metadata, taiwan_login the per-character login state, taiwan_billing the
// currency balances. The zero-date sentinels of the original MySQL schema
// ('0000-00-00 00:00:00') map to the Postgres 'epoch' timestamp.
const (
	insertAccount = `INSERT INTO d_taiwan.accounts
    (accountname, password, qq, ip, seal_ip, seal_mac, seal_accountname)
    VALUES ($1, $2, $3, '0', '0', '0', '0');`

	selectUIDByAccountName = `SELECT uid FROM d_taiwan.accounts
    WHERE accountname = $1 LIMIT 1;`

	accountExists = `SELECT EXISTS (
    SELECT 1 FROM d_taiwan.accounts WHERE accountname = $1);`

	updateAccountPassword = `UPDATE d_taiwan.accounts
    SET password = $1
    WHERE accountname = $2;`

	insertMemberInfo = `INSERT INTO d_taiwan.member_info
    (m_id, user_id, updt_date, state, email_yn, slot)
    VALUES ($1, $1, NOW(), 1, 'y', 8);`

	insertMemberJoinInfo = `INSERT INTO d_taiwan.member_join_info
    (m_id, reg_date, ip, contry_code, login_time, error_type, login_ip, game_use_history)
    VALUES ($1, 0, '', 0, 0, 0, '', 0);`

	insertWhitelistEntry = `INSERT INTO d_taiwan.member_white_account
    (m_id, reg_date)
    VALUES ($1, 'epoch');`

	insertMemberLogin = `INSERT INTO taiwan_login.member_login
    (m_id, login_time, expire_time, last_play_time, total_account_fail, account_fail,
     report_cnt, reliable_flag, trade_gold_daily, last_gift_time, gift_cnt, login_ip,
     security_flag, power_side, dungeon_gain_gold, school_id, rating, cleanpad_point,
     tutorial_skipable, event_charac_flag, garena_token_key)
    VALUES ($1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, '', 0, 0, 0, 0, 0, 0, '0', 0, 0);`

	insertCashCera = `INSERT INTO taiwan_billing.cash_cera
    (account, cera, cera_cold, mod_tran, mod_date, reg_date)
    VALUES ($1, $2, 0, 0, 'epoch', 'epoch');`

	insertCashCeraPoint = `INSERT INTO taiwan_billing.cash_cera_point
    (account, cera_point, reg_date, mod_date)
    VALUES ($1, $2, 'epoch', 'epoch');`
)
